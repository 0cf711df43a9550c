package registry

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var (
	stripPrefix = regexp.MustCompile(`^(\d+)[-_](.+)$`)
	separators  = regexp.MustCompile(`[_\-]+`)
)

// acronyms restores casing the word-by-word title pass would mangle.
var acronyms = map[string]string{
	"api":    "API",
	"csv":    "CSV",
	"dns":    "DNS",
	"exif":   "EXIF",
	"http":   "HTTP",
	"https":  "HTTPS",
	"id3":    "ID3",
	"ip":     "IP",
	"json":   "JSON",
	"lsb":    "LSB",
	"md5":    "MD5",
	"ml":     "ML",
	"mp3":    "MP3",
	"nltk":   "NLTK",
	"oop":    "OOP",
	"pcap":   "PCAP",
	"pil":    "PIL",
	"sha1":   "SHA1",
	"sha256": "SHA256",
	"ssl":    "SSL",
	"tcp":    "TCP",
	"tls":    "TLS",
	"udp":    "UDP",
	"url":    "URL",
}

// Title derives a friendly display name from a script stem:
// "06_exif_geotag_extractor" becomes "EXIF Geotag Extractor".
func Title(stem string) string {
	base := stem
	if m := stripPrefix.FindStringSubmatch(stem); m != nil {
		base = m[2]
	}
	base = strings.TrimSpace(separators.ReplaceAllString(base, " "))
	if base == "" {
		base = stem
	}

	words := lo.Map(strings.Fields(base), func(w string, _ int) string {
		if a, ok := acronyms[strings.ToLower(w)]; ok {
			return a
		}
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
	return strings.Join(words, " ")
}
