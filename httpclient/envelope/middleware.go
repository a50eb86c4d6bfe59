package envelope

import (
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/logger"
)

// Middleware validates envelopes on every 2xx response. Transport errors
// pass through unchanged; non-200 envelopes become *Error. Each failure is
// logged exactly once here.
func Middleware(log *logger.Logger) httpclient.ResponseMiddleware {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("httpclient")

	return func(resp *httpclient.Response, err error) (*httpclient.Response, error) {
		if err != nil {
			logTransport(log, err)
			return resp, err
		}
		if resp == nil {
			return resp, nil
		}
		if berr := check(resp); berr != nil {
			logBusiness(log, berr)
			return resp, berr
		}
		return resp, nil
	}
}

func logTransport(log *logger.Logger, err error) {
	fields := logger.Fields(logger.FieldError, err.Error())
	if te, ok := httpclient.AsTransport(err); ok {
		fields[logger.FieldKind] = te.Kind.String()
		fields[logger.FieldMethod] = te.Method
		fields[logger.FieldURL] = te.URL
		if te.StatusCode > 0 {
			fields[logger.FieldStatus] = te.StatusCode
		}
	}
	log.Error("request failed", fields)
}

func logBusiness(log *logger.Logger, e *Error) {
	fields := logger.Fields(
		logger.FieldCode, e.Code,
		logger.FieldMethod, e.Method,
		logger.FieldURL, e.URL,
		logger.FieldError, e.Message,
	)
	if e.RequestID != "" {
		fields[logger.FieldRequestID] = e.RequestID
	}
	if e.Err != nil {
		fields["cause"] = e.Err.Error()
	}
	log.Warn("backend rejected request", fields)
}
