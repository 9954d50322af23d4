package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/irsalhamdi/course-market/api/background"
	"github.com/irsalhamdi/course-market/api/middleware"
	"github.com/irsalhamdi/course-market/api/web"
	"github.com/irsalhamdi/course-market/core/auth"
	"github.com/irsalhamdi/course-market/core/course"
	"github.com/irsalhamdi/course-market/core/payment"
	"github.com/irsalhamdi/course-market/core/progress"
	"github.com/irsalhamdi/course-market/core/user"
	"github.com/irsalhamdi/course-market/rate"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// prefix versions the whole HTTP surface.
const prefix = "/api/v1"

type APIConfig struct {
	CorsOrigin       string
	Log              logrus.FieldLogger
	DB               *mongo.Database
	Session          *scs.SessionManager
	Mailer           payment.Mailer
	Background       *background.Background
	Gateway          payment.Gateway
	PaymentSecret    string
	Providers        map[string]auth.Provider
	LoginRedirectURL string
	Limiter          *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	authen := auth.Authenticate(cfg.Session)
	admin := auth.Admin(cfg.Session)
	limited := middleware.RateLimit(cfg.Limiter)

	a.Handle(http.MethodPost, prefix+"/auth/signup", auth.HandleSignup(cfg.DB, cfg.Session), limited)
	a.Handle(http.MethodPost, prefix+"/auth/login", auth.HandleLogin(cfg.DB, cfg.Session), limited)
	a.Handle(http.MethodPost, prefix+"/auth/logout", auth.HandleLogout(cfg.Session))
	a.Handle(http.MethodGet, prefix+"/auth/oauth-login/{provider}", auth.HandleOauthLogin(cfg.Session, cfg.Providers))
	a.Handle(http.MethodGet, prefix+"/auth/oauth-callback/{provider}", auth.HandleOauthCallback(cfg.DB, cfg.Session, cfg.Providers, cfg.LoginRedirectURL))

	a.Handle(http.MethodGet, prefix+"/users/current", user.HandleShowCurrent(cfg.DB), authen)

	a.Handle(http.MethodGet, prefix+"/courses", course.HandleList(cfg.DB))
	a.Handle(http.MethodGet, prefix+"/courses/{id}", course.HandleShow(cfg.DB))
	a.Handle(http.MethodPost, prefix+"/courses", course.HandleCreate(cfg.DB), admin)
	a.Handle(http.MethodPut, prefix+"/courses/{id}", course.HandleUpdate(cfg.DB), admin)

	a.Handle(http.MethodGet, prefix+"/courses/{course_id}/progress", progress.HandleShowByCourse(cfg.DB), authen)
	a.Handle(http.MethodPut, prefix+"/courses/{course_id}/videos/{id}/complete", progress.HandleCompleteVideo(cfg.DB), authen)

	store := payment.NewStore(cfg.DB)
	a.Handle(http.MethodPost, prefix+"/payment/capture", payment.HandleCapture(store, cfg.Gateway), authen, limited)
	a.Handle(http.MethodPost, prefix+"/payment/verify", payment.HandleVerify(store, cfg.Mailer, cfg.PaymentSecret, cfg.Background), authen, limited)
	a.Handle(http.MethodPost, prefix+"/payment/sendPaymentSuccessEmail", payment.HandleSuccessEmail(store, cfg.Mailer), authen)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
