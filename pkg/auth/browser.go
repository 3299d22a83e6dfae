package auth

import (
	"context"
	"log/slog"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register all browser cookie stores
)

// BrowserSource reads LinkedIn cookies from local browser cookie stores.
type BrowserSource struct {
	logger *slog.Logger
}

// NewBrowserSource creates a browser cookie source.
func NewBrowserSource(logger *slog.Logger) *BrowserSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowserSource{logger: logger}
}

// Cookies returns the essential LinkedIn cookies found in any installed
// browser's cookie store. A failed or empty read is not an error: the
// next source in the chain gets its turn.
func (s *BrowserSource) Cookies(ctx context.Context) (map[string]string, error) {
	s.logger.DebugContext(ctx, "reading browser cookies", "domain", Domain)

	kookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(Domain))
	if err != nil {
		s.logger.Debug("failed to read browser cookies", "error", err)
		return nil, nil //nolint:nilnil // a failed browser read is not fatal
	}
	if len(kookies) == 0 {
		return nil, nil //nolint:nilnil // no browser cookies is not an error
	}

	essential := make(map[string]bool, len(essentialCookies))
	for _, name := range essentialCookies {
		essential[name] = true
	}

	cookies := make(map[string]string)
	for _, c := range kookies {
		if essential[c.Name] {
			cookies[c.Name] = c.Value
		}
	}

	var found, missing []string
	for _, name := range essentialCookies {
		if _, ok := cookies[name]; ok {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(found) > 0 {
		s.logger.InfoContext(ctx, "browser cookies found", "keys", found)
	}
	if len(missing) > 0 {
		s.logger.InfoContext(ctx, "browser cookies missing", "keys", missing)
	}

	return cookies, nil
}
