package doctor

import (
	"net/url"
	"strings"
)

// secretKeyPatterns are substrings that mark a variable name as sensitive.
// Matching is case-insensitive.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes are wire formats of credentials that show up in git remote
// URLs and CI environments regardless of how the variable is named.
var tokenPrefixes = []string{
	"ghp_",        // GitHub personal access token
	"gho_",        // GitHub OAuth token
	"ghs_",        // GitHub app installation token
	"github_pat_", // GitHub fine-grained personal access token
	"glpat-",      // GitLab personal access token
	"sk-",         // common API secret key prefix
	"AKIA",        // AWS access key id
	"xoxb-",       // Slack bot token
	"xoxp-",       // Slack user token
}

// MaskSecrets masks sensitive values in the given environment variable map.
// Keys matching secretKeyPatterns or values matching tokenPrefixes are
// masked. Returns a new map with sensitive values redacted, so a doctor
// report is safe to paste into a bug report.
func MaskSecrets(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}

	masked := make(map[string]string, len(env))
	for k, v := range env {
		if ShouldMask(k) || ContainsTokenPrefix(v) {
			masked[k] = MaskValue(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL redacts credentials embedded in a remote URL. Passwords are
// always masked; a username is masked too when it looks like an access
// token, the shape GitHub and GitLab use for HTTPS remotes
// (https://ghp_xxx@host/org/repo.git). Strings that do not parse as URLs,
// including scp-like remotes, are returned unchanged.
func MaskURL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}

	username := parsed.User.Username()
	password, hasPassword := parsed.User.Password()

	switch {
	case hasPassword && password != "":
		parsed.User = url.UserPassword(username, MaskValue(password))
	case ContainsTokenPrefix(username):
		parsed.User = url.User(MaskValue(username))
	default:
		return rawURL
	}

	return parsed.String()
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
// Matching is case-insensitive.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token
// prefix. This catches values that are clearly credentials even when the
// key name gives no indication (e.g. "MY_VAR=ghp_abc123").
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
