package main

import (
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

// openBrowser opens url in the default browser. A launch failure is only
// an inconvenience, so it is reported and swallowed.
func openBrowser(url string) {
	if err := browser.OpenURL(url); err != nil {
		logrus.WithError(err).Warnf("could not open browser, please open %s manually", url)
		return
	}
	logrus.Info("opening browser automatically")
}
