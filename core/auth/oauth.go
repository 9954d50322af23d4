package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/irsalhamdi/course-market/api/web"
	"github.com/irsalhamdi/course-market/api/weberr"
	"github.com/irsalhamdi/course-market/core/claims"
	"github.com/irsalhamdi/course-market/core/user"
	"github.com/irsalhamdi/course-market/random"
	"github.com/irsalhamdi/course-market/validate"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
)

type ProviderConfig struct {
	Name        string
	Client      string
	Secret      string
	URL         string
	RedirectURL string
}

type Provider struct {
	oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// MakeProviders runs OIDC discovery for every configured provider.
func MakeProviders(ctx context.Context, cfgs []ProviderConfig) (map[string]Provider, error) {
	provs := make(map[string]Provider, len(cfgs))
	for _, cfg := range cfgs {
		prov, err := oidc.NewProvider(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("discovering provider %q: %w", cfg.Name, err)
		}

		provs[cfg.Name] = Provider{
			Config: oauth2.Config{
				ClientID:     cfg.Client,
				ClientSecret: cfg.Secret,
				Endpoint:     prov.Endpoint(),
				RedirectURL:  cfg.RedirectURL,
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
			verifier: prov.Verifier(&oidc.Config{ClientID: cfg.Client}),
		}
	}
	return provs, nil
}

func HandleOauthLogin(session *scs.SessionManager, provs map[string]Provider) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		prov, ok := provs[web.Param(r, "provider")]
		if !ok {
			return weberr.NotFound(fmt.Errorf("unknown oauth provider %q", web.Param(r, "provider")))
		}

		state := random.String(24)
		session.Put(ctx, sessionState, state)

		http.Redirect(w, r, prov.AuthCodeURL(state), http.StatusFound)
		return nil
	}
}

func HandleOauthCallback(db *mongo.Database, session *scs.SessionManager, provs map[string]Provider, redirectURL string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		prov, ok := provs[web.Param(r, "provider")]
		if !ok {
			return weberr.NotFound(fmt.Errorf("unknown oauth provider %q", web.Param(r, "provider")))
		}

		state := session.PopString(ctx, sessionState)
		if state == "" || state != r.URL.Query().Get("state") {
			return weberr.NotAuthorized(errors.New("oauth state mismatch"))
		}

		tok, err := prov.Exchange(ctx, r.URL.Query().Get("code"))
		if err != nil {
			return weberr.NotAuthorized(fmt.Errorf("exchanging oauth code: %w", err))
		}

		raw, ok := tok.Extra("id_token").(string)
		if !ok {
			return weberr.NotAuthorized(errors.New("token response without id_token"))
		}

		idt, err := prov.verifier.Verify(ctx, raw)
		if err != nil {
			return weberr.NotAuthorized(fmt.Errorf("verifying id_token: %w", err))
		}

		var profile struct {
			Email      string `json:"email"`
			GivenName  string `json:"given_name"`
			FamilyName string `json:"family_name"`
		}
		if err := idt.Claims(&profile); err != nil {
			return fmt.Errorf("decoding id_token claims: %w", err)
		}

		usr, err := fetchOrCreate(ctx, db, profile.Email, profile.GivenName, profile.FamilyName)
		if err != nil {
			return fmt.Errorf("upserting oauth user: %w", err)
		}

		if err := login(ctx, session, usr); err != nil {
			return err
		}

		http.Redirect(w, r, redirectURL, http.StatusFound)
		return nil
	}
}

// fetchOrCreate links an oauth identity to the local user with the same
// verified email, creating a password-less account on first login.
func fetchOrCreate(ctx context.Context, db *mongo.Database, mail string, firstName string, lastName string) (user.User, error) {
	mail = strings.ToLower(mail)

	usr, err := user.FetchByEmail(ctx, db, mail)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	now := time.Now().UTC()
	usr = user.User{
		ID:             validate.GenerateID(),
		Email:          mail,
		FirstName:      firstName,
		LastName:       lastName,
		Role:           claims.RoleUser,
		Courses:        []string{},
		CourseProgress: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Create(ctx, db, usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
