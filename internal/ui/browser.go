package ui

import (
	"fmt"
	"os/exec"
	"runtime"

	"tabi/internal/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// URLOpener hands a URL to whatever the host uses to open links.
type URLOpener func(url string) error

// URLCopier puts a URL on the system clipboard.
type URLCopier func(url string) error

// OpenInBrowser starts the platform's URL handler and does not wait for it.
func OpenInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child without blocking the event loop.
	go func() { _ = cmd.Wait() }()
	return nil
}

// CopyToClipboard writes url to the system clipboard.
func CopyToClipboard(url string) error {
	return clipboard.WriteAll(url)
}

func openURLCmd(open URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to open link: %w", err)}
		}
		return model.LinkOpenedMsg{URL: url}
	}
}

func copyURLCmd(copyFn URLCopier, url string) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(url); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to copy link: %w", err)}
		}
		return model.LinkCopiedMsg{URL: url}
	}
}
