package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// checkWalletPage verifies the wallet approval page exists under dir before
// the server binds anything. A missing page is a fail-fast startup error,
// not something to retry.
func checkWalletPage(dir string) error {
	path := filepath.Join(dir, walletPage)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found in %s", walletPage, dir)
		}
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	return nil
}

// fileHandler serves everything under dir with the standard file server:
// MIME inference, directory listings and range requests included.
func fileHandler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
