// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns failures to reach the Ethereum JSON-RPC node into
// readable troubleshooting output.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Cause is the detected reason a node request failed.
type Cause int

const (
	CauseUnknown Cause = iota
	CauseTimeout
	CauseDNS
	CauseRefused
	CauseTLS
	CauseServer
)

// FormatNetworkError prints a troubleshooting message for err to w and
// returns err wrapped. action describes what was attempted ("loading
// campaigns"); endpoint is the node URL.
func FormatNetworkError(w io.Writer, err error, action, endpoint string) error {
	if err == nil {
		return nil
	}
	host := ExtractHostFromURL(endpoint)
	title, hints := describe(Classify(err), host)

	fmt.Fprintf(w, "%s while %s\n\n", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title), action)
	for _, h := range hints {
		fmt.Fprintf(w, "  • %s\n", h)
	}
	fmt.Fprintln(w)
	pterm.Debug.Printfln("Technical details: %s", short(err.Error()))

	return fmt.Errorf("node %s unreachable: %w", host, err)
}

// Classify detects the network failure behind err.
func Classify(err error) Cause {
	switch {
	case err == nil:
		return CauseUnknown
	case isTimeoutError(err):
		return CauseTimeout
	case isDNSError(err):
		return CauseDNS
	case isConnectionRefusedError(err):
		return CauseRefused
	case isSSLError(err):
		return CauseTLS
	case isServerError(err.Error()):
		return CauseServer
	}
	return CauseUnknown
}

// IsNetworkError reports whether err looks like a transport failure rather
// than a contract or wallet error.
func IsNetworkError(err error) bool {
	if Classify(err) != CauseUnknown {
		return true
	}
	var opErr *net.OpError
	var urlErr *url.Error
	return errors.As(err, &opErr) || errors.As(err, &urlErr)
}

func describe(c Cause, host string) (string, []string) {
	switch c {
	case CauseTimeout:
		return "Node timeout", []string{
			"The node at " + host + " took too long to respond",
			"Public endpoints may be rate limited; try again shortly",
		}
	case CauseDNS:
		return "Cannot resolve node address", []string{
			"Unable to look up " + host,
			"Check the --rpc flag or CHARITY_RPC_URL",
		}
	case CauseRefused:
		return "Connection refused", []string{
			"Nothing is listening at " + host,
			"Start your local node or point --rpc at a running endpoint",
		}
	case CauseTLS:
		return "Secure connection failed", []string{
			"TLS handshake with " + host + " failed",
			"Check your system clock and proxy settings",
		}
	case CauseServer:
		return "Node error", []string{
			host + " returned a server error",
			"The provider may be degraded; try again or use another endpoint",
		}
	}
	return "Cannot reach the Ethereum node", []string{
		"Check your internet connection",
		"Verify that " + host + " is a JSON-RPC endpoint",
	}
}

func short(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}

func isTimeoutError(err error) bool {
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) || strings.Contains(err.Error(), "no such host")
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "tls") ||
		strings.Contains(lower, "x509") ||
		strings.Contains(lower, "certificate") ||
		strings.Contains(lower, "handshake")
}

func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	for _, s := range []string{"500 internal server error", "502 bad gateway", "503 service unavailable", "504 gateway timeout", "bad gateway", "service unavailable"} {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// ExtractHostFromURL returns the host part of urlStr, or "node" when there is none.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "node"
	}
	return u.Host
}
