// Package browser recognises in-app browsers, which cannot show the
// install prompt and break OAuth popups.
package browser

import (
	"net/http"
	"strings"
)

// known in-app user-agent markers (case-insensitive), most specific first
var inAppPatterns = []struct {
	marker string
	app    string
}{
	{"fban/", "facebook"},
	{"fbav/", "facebook"},
	{"fb_iab", "facebook"},
	{"instagram", "instagram"},
	{"musical_ly", "tiktok"},
	{"bytedancewebview", "tiktok"},
	{"tiktok", "tiktok"},
	{"kakaotalk", "kakaotalk"},
	{"naver(inapp", "naver"},
	{"line/", "line"},
	{"micromessenger", "wechat"},
	{"twitter", "twitter"},
	{"linkedinapp", "linkedin"},
	{"snapchat", "snapchat"},
	{"pinterest", "pinterest"},
}

// Environment describes the client that sent a request.
type Environment struct {
	InApp   bool   `json:"in_app"`
	App     string `json:"app,omitempty"`
	WebView bool   `json:"webview"`
	Mobile  bool   `json:"mobile"`
}

// Detect classifies a User-Agent string.
func Detect(userAgent string) Environment {
	ua := strings.ToLower(userAgent)
	env := Environment{
		Mobile: strings.Contains(ua, "mobile") || strings.Contains(ua, "android") ||
			strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"),
	}

	for _, p := range inAppPatterns {
		if strings.Contains(ua, p.marker) {
			env.InApp = true
			env.App = p.app
			break
		}
	}

	env.WebView = isWebView(ua)
	if env.WebView && !env.InApp {
		env.InApp = true
		env.App = "webview"
	}

	return env
}

// DetectRequest classifies r by its User-Agent header.
func DetectRequest(r *http.Request) Environment {
	return Detect(r.Header.Get("User-Agent"))
}

// android marks webviews with "; wv)", iOS webviews lack the Safari token
func isWebView(ua string) bool {
	if strings.Contains(ua, "android") && strings.Contains(ua, "; wv)") {
		return true
	}

	isIOS := strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad")
	if isIOS && strings.Contains(ua, "applewebkit") && !strings.Contains(ua, "safari") {
		return true
	}

	return false
}
