package viewer

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
)

func init() {
	// Keep anything the launcher prints off stdout
	browser.Stdout = os.Stderr
}

// OpenBrowser asks the desktop to open url in the default browser
func OpenBrowser(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
