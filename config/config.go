package config

import "time"

type Config struct {
	Web      Web
	Cors     Cors
	DB       DB
	Session  Session
	Email    Email
	Razorpay Razorpay
	Oauth    Oauth
	Limit    Limit
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:4000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

type DB struct {
	URI            string        `conf:"default:mongodb://localhost:27017"`
	Name           string        `conf:"default:marketplace"`
	ConnectTimeout time.Duration `conf:"default:10s"`
}

type Session struct {
	Lifetime time.Duration `conf:"default:24h"`
}

type Email struct {
	Address  string `conf:"default:no-reply@localhost"`
	Password string `conf:"mask"`
	Host     string `conf:"default:localhost"`
	Port     string `conf:"default:25"`
}

// Razorpay carries the API key pair used both to create orders and to verify
// the signature of checkout callbacks.
type Razorpay struct {
	Key    string `conf:"mask"`
	Secret string `conf:"mask"`
	URL    string `conf:"default:https://api.razorpay.com"`
}

type Oauth struct {
	DiscoveryTimeout time.Duration `conf:"default:30s"`
	LoginRedirectURL string        `conf:"default:/"`
	Google           OauthProvider
}

type OauthProvider struct {
	Client      string
	Secret      string `conf:"mask"`
	URL         string `conf:"default:https://accounts.google.com"`
	RedirectURL string
}

type Limit struct {
	RPS    float64 `conf:"default:1"`
	Burst  int     `conf:"default:5"`
	Expiry int     `conf:"default:10"`
}
