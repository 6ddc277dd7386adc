package storage

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// BasePrefix returns the per-variant object prefix jobs/<job_id>/<lang>.
// Every stage writes its artifacts beneath it under a stage subfolder.
func BasePrefix(jobID, lang string) string {
	return path.Join("jobs", jobID, lang)
}

// StageKey builds the deterministic object key for a stage artifact:
// jobs/<job_id>/<lang>/<stage>/<artifact...>. Deterministic keys make
// redelivered work overwrite rather than accumulate.
func StageKey(jobID, lang string, parts ...string) string {
	return path.Join(append([]string{BasePrefix(jobID, lang)}, parts...)...)
}

// ObjectURL renders the s3://<bucket>/<key> form stored in variant rows.
func ObjectURL(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

// ParseURL splits an object URL into bucket and key. Accepts the canonical
// s3:// scheme and, for compatibility with externally supplied asset URLs,
// http(s) endpoint URLs whose first path element is the bucket.
func ParseURL(rawURL string) (bucket, key string, err error) {
	var withoutScheme string
	if strings.HasPrefix(rawURL, "s3://") {
		withoutScheme = strings.TrimPrefix(rawURL, "s3://")
	} else {
		parsed, perr := url.Parse(rawURL)
		if perr != nil {
			return "", "", fmt.Errorf("invalid object URL %q: %w", rawURL, perr)
		}
		withoutScheme = parsed.Host + parsed.Path
	}
	bucket, key, _ = strings.Cut(withoutScheme, "/")
	key = strings.TrimLeft(key, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object URL %q", rawURL)
	}
	return bucket, key, nil
}
