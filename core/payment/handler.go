package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/course-market/api/background"
	"github.com/irsalhamdi/course-market/api/web"
	"github.com/irsalhamdi/course-market/api/weberr"
	"github.com/irsalhamdi/course-market/core/claims"
	"github.com/irsalhamdi/course-market/core/course"
	"github.com/irsalhamdi/course-market/core/progress"
	"github.com/irsalhamdi/course-market/core/user"
	"github.com/irsalhamdi/course-market/email"
	"github.com/irsalhamdi/course-market/random"
)

const receiptLength = 20

// HandleCapture validates the requested course list, totals the prices of the
// courses the caller does not already own and opens a gateway order for that
// amount in paise.
func HandleCapture(store Store, gw Gateway) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		var cn CaptureNew
		if err := web.Decode(w, r, &cn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding capture request: %w", err))
		}

		if len(cn.Courses) == 0 {
			err := errors.New("capture request without course ids")
			return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Please provide Course Id"}, http.StatusBadRequest))
		}

		var total int64
		for _, courseID := range cn.Courses {
			crs, err := store.FetchCourse(ctx, courseID)
			if err != nil {
				if errors.Is(err, course.ErrNotFound) {
					return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Course Not Found"}, http.StatusNotFound))
				}
				return fmt.Errorf("fetching course[%s]: %w", courseID, err)
			}

			// The first course the caller already owns rejects the whole
			// request, even when earlier ids were valid: the order must cover
			// exactly the list the client previewed, not a reduced one.
			if crs.HasStudent(clm.UserID) {
				err := fmt.Errorf("user[%s] already enrolled in course[%s]", clm.UserID, courseID)
				return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Student is already enrolled"}, http.StatusConflict))
			}

			total += int64(crs.Price)
		}

		ord, err := gw.CreateOrder(ctx, total*100, Currency, random.String(receiptLength))
		if err != nil {
			err = fmt.Errorf("creating order for user[%s]: %w", clm.UserID, err)
			return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Could not create the payment order"}, http.StatusBadGateway))
		}

		return web.Respond(ctx, w, &Response{Success: true, Message: ord}, http.StatusOK)
	}
}

// HandleVerify checks the signature the gateway handed to the client after
// checkout and, when it matches, enrolls the user into the paid courses.
func HandleVerify(store Store, mailer Mailer, secret string, bg *background.Background) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		var vn VerifyNew
		if err := web.Decode(w, r, &vn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding verify request: %w", err))
		}

		// One opaque rejection for every failure mode: a forged callback must
		// not learn which check it failed.
		if vn.OrderID == "" || vn.PaymentID == "" || vn.Signature == "" || len(vn.Courses) == 0 {
			return paymentFailed(errors.New("incomplete payment callback"))
		}

		if !VerifySignature(secret, vn.OrderID, vn.PaymentID, vn.Signature) {
			return paymentFailed(fmt.Errorf("signature mismatch on order[%s]", vn.OrderID))
		}

		if err := enroll(ctx, store, mailer, bg, vn.Courses, clm.UserID); err != nil {
			if errors.Is(err, course.ErrNotFound) || errors.Is(err, user.ErrNotFound) {
				return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Course not Found"}, http.StatusNotFound))
			}
			return fmt.Errorf("enrolling user[%s]: %w", clm.UserID, err)
		}

		return web.Respond(ctx, w, &Response{Success: true, Message: "Payment Verified"}, http.StatusOK)
	}
}

func paymentFailed(err error) error {
	return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Payment Failed"}, http.StatusBadRequest))
}

// enroll records the user on every course in order: push onto the course's
// enrolled set, create an empty progress record, push both ids onto the user
// document, queue a confirmation mail. The first failing course stops the
// loop and enrollments already made are kept; there is no multi-document
// transaction, a standalone mongod cannot provide one.
func enroll(ctx context.Context, store Store, mailer Mailer, bg *background.Background, courseIDs []string, userID string) error {
	for _, courseID := range courseIDs {
		crs, err := store.EnrollStudent(ctx, courseID, userID)
		if err != nil {
			return fmt.Errorf("enrolling into course[%s]: %w", courseID, err)
		}

		prog := progress.New(courseID, userID)
		if err := store.CreateProgress(ctx, prog); err != nil {
			return fmt.Errorf("creating progress record for course[%s]: %w", courseID, err)
		}

		usr, err := store.PushUserEnrollment(ctx, userID, courseID, prog.ID)
		if err != nil {
			return fmt.Errorf("recording enrollment on user[%s]: %w", userID, err)
		}

		// Mail failures are logged by the pool and never fail the request.
		subject, body := email.RenderEnrollment(crs.Name, usr.FirstName)
		to := usr.Email
		bg.Run(func() error {
			if err := mailer.Send(to, subject, body); err != nil {
				return fmt.Errorf("sending enrollment mail for course[%s]: %w", courseID, err)
			}
			return nil
		})
	}

	return nil
}

// HandleSuccessEmail sends the standalone "payment received" receipt.
func HandleSuccessEmail(store Store, mailer Mailer) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		var rn ReceiptNew
		if err := web.Decode(w, r, &rn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding receipt request: %w", err))
		}

		if rn.OrderID == "" || rn.PaymentID == "" || rn.Amount == 0 {
			err := errors.New("incomplete receipt request")
			return weberr.Wrap(err, weberr.WithResponse(&Response{Success: false, Message: "Please provide all the fields"}, http.StatusBadRequest))
		}

		usr, err := store.FetchUser(ctx, clm.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching user[%s]: %w", clm.UserID, err)
		}

		subject, body := email.RenderReceipt(usr.FirstName, rn.Amount, rn.OrderID, rn.PaymentID)
		if err := mailer.Send(usr.Email, subject, body); err != nil {
			return fmt.Errorf("sending receipt mail to user[%s]: %w", clm.UserID, err)
		}

		return web.Respond(ctx, w, &Response{Success: true, Message: "Payment receipt sent"}, http.StatusOK)
	}
}
