package domain

import "strings"

const defaultPlatformIcon = "/assets/icons/logo-github.svg"

var platformIcons = map[string]string{
	"github":    "/assets/icons/logo-github.svg",
	"linkedin":  "/assets/icons/linkedin.svg",
	"tiktok":    "/assets/icons/tiktok-logo.svg",
	"instagram": "/assets/icons/instagram-logo.svg",
	"cv":        "/assets/icons/curriculum-portfolio.svg",
}

// PlatformIcon returns the built-in icon for a social platform, used when
// a SocialLink has no uploaded icon of its own.
func PlatformIcon(platform string) string {
	if icon, ok := platformIcons[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return icon
	}
	return defaultPlatformIcon
}

// IconOrDefault returns the link's own icon or the platform fallback.
func (s SocialLink) IconOrDefault() string {
	if s.Icon != "" {
		return s.Icon
	}
	return PlatformIcon(s.Platform)
}
