package localize

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

type contextKey string

func (c contextKey) String() string {
	return "localize/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds the language preference list to the supplied context.
func ToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext extracts the language preference list from the supplied
// context if any exist.
func FromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

// ToMap stores the language preference list in message metadata so it can
// travel with queued work.
func ToMap(m map[string]string, lang []string) map[string]string {
	m["lang"] = strings.Join(lang, ",")
	return m
}

// FromMap recovers the language preference list stored by ToMap.
func FromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}

// ExtractLanguageFromHTTPRequest collects the request's language
// preferences, a lang form value first, then the Accept-Language header.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := ExtractLanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

// ExtractLanguageFromHTTPHeader parses the Accept-Language header into tags
// ordered by quality. A header that does not parse is split on commas as is.
func ExtractLanguageFromHTTPHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	if acceptLanguageHeader == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguageHeader)
	if err != nil {
		return strings.Split(acceptLanguageHeader, ",")
	}

	languages := make([]string, 0, len(tags))
	for _, tag := range tags {
		languages = append(languages, tag.String())
	}
	return languages
}

// ExtractLanguageFromGrpcRequest reads the accept-language entry from the
// incoming call's metadata.
func ExtractLanguageFromGrpcRequest(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	header, ok := md["accept-language"]
	if !ok || len(header) == 0 {
		return nil
	}
	return strings.Split(header[0], ",")
}
