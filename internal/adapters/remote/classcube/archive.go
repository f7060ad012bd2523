package classcube

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// ExchangeArchive keeps raw HTML pages from the remote site on disk for
// debugging. The site's markup shifts without notice; an archived page is
// usually the only way to work out why a response was misclassified.
type ExchangeArchive struct {
	dir string
}

// NewExchangeArchive stores pages under dir, defaulting to
// $XDG_DATA_HOME/cubesign/exchanges.
func NewExchangeArchive(dir string) *ExchangeArchive {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, "cubesign", "exchanges")
	}
	return &ExchangeArchive{dir: dir}
}

func (a *ExchangeArchive) Save(kind string, body []byte) (string, error) {
	if err := os.MkdirAll(a.dir, 0o700); err != nil {
		return "", fmt.Errorf("create exchange archive dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.html", kind, uuid.NewString()[:8])
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return "", fmt.Errorf("archive exchange: %w", err)
	}

	return path, nil
}
