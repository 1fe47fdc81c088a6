// Package browser opens URLs in the system default browser.
//
// It shells out to the platform launcher (cmd /c start, open, xdg-open) and
// does not wait for the command to finish. Callers treat failures as
// non-fatal: a headless environment simply never sees the browser window.
package browser
