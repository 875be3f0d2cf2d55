package usage

import (
	"errors"

	"github.com/interutils/cli/internal/domain"
)

// Report prints a usage error as a caution and swallows it, so a typo in
// a menu command does not end the session. Other errors are returned.
func Report(out domain.Reporter, err error) error {
	var uerr *Error
	if errors.As(err, &uerr) {
		out.Report(domain.SeverityCaution, uerr.Message)
		return nil
	}
	return err
}
