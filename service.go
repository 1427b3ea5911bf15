package dispatch

import (
	"fmt"
	"log/slog"
)

// Service is a handler with its argument and result types erased. It
// decodes its own arguments from the payload.
type Service interface {
	Handle(p *Payload) Status
}

// ServiceFunc adapts a plain function to Service.
type ServiceFunc func(p *Payload) Status

// Handle calls f(p).
func (f ServiceFunc) Handle(p *Payload) Status { return f(p) }

// checkedService additionally reports why arguments could not be decoded.
type checkedService interface {
	Service
	handle(p *Payload) (Status, error)
}

type service[A any, R Result] struct {
	handler Handler[A, R]
	extract Extractor[A]
	logger  *slog.Logger
	exact   bool
}

// NewService erases h behind the Service interface. Extraction failures
// are logged to logger (slog.Default when nil) and reported as
// StatusFailed without invoking the handler.
func NewService[A any, R Result](h Handler[A, R], logger *slog.Logger) (Service, error) {
	svc, err := newService(h, logger, false)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newService[A any, R Result](h Handler[A, R], logger *slog.Logger, exact bool) (*service[A, R], error) {
	extract, err := ExtractorFor[A]()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service[A, R]{
		handler: h,
		extract: extract,
		logger:  logger,
		exact:   exact,
	}, nil
}

func (s *service[A, R]) Handle(p *Payload) Status {
	st, _ := s.handle(p)
	return st
}

func (s *service[A, R]) handle(p *Payload) (Status, error) {
	args, err := s.extract(p)
	if err == nil && s.exact && p.Len() > 0 {
		err = fmt.Errorf("%w: %d unread at offset %d", ErrTrailingBytes, p.Len(), p.Offset())
	}
	if err != nil {
		s.logger.Warn("argument extraction failed", "error", err)
		return StatusFailed, err
	}
	return s.handler.Call(args).Status(), nil
}
