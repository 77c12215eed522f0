package ports

// Logger defines the interface for diagnostics. Implementations must never
// write to stdout; stdout carries only the emitted fragment.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
