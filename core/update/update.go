package update

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"

	"github.com/overair/overair/core/clientconfig"
	coreerrors "github.com/overair/overair/core/errors"
	"github.com/overair/overair/core/manifest"
)

// Update is the validated model derived from one manifest, the form handed
// to the loader and persistence collaborators. It carries no reference back
// to the adapter it came from.
type Update struct {
	ID                uuid.UUID
	CommitTime        time.Time
	RuntimeVersion    string
	RuntimeVersionRaw any
	BundleKey         string
	AssetURLOverride  string
	Assets            []manifest.AssetDescriptor
}

// FromManifest derives an Update through the RawManifest contract alone.
// Legacy release identifiers are UUID strings; anything else gets a
// deterministic v5 UUID so the same release always maps to the same ID.
// An absent bundle key defaults to the update ID, the consumer-side
// derivation the parsing layer deliberately does not perform.
func FromManifest(m manifest.RawManifest) (Update, error) {
	releaseID, err := m.ReleaseID()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}
	id, err := uuid.Parse(releaseID)
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(releaseID))
	}

	rawCommitTime, err := m.CommitTime()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}
	commitTime, err := time.Parse(time.RFC3339, rawCommitTime)
	if err != nil {
		return Update{}, coreerrors.Wrap(
			fmt.Errorf("parse commitTime %q: %w", rawCommitTime, err),
			coreerrors.CategoryMalformedField,
			"update_commit_time_invalid",
			"commitTime must be an ISO-8601 timestamp",
			false,
		)
	}

	runtimeVersionRaw, err := m.RuntimeVersion()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}
	runtimeVersion, _ := runtimeVersionRaw.(string)

	bundleKey, err := m.BundleKey()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}
	resolvedBundleKey := id.String()
	if bundleKey != nil {
		resolvedBundleKey = *bundleKey
	}

	override, err := m.AssetURLOverride()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}
	resolvedOverride := ""
	if override != nil {
		resolvedOverride = *override
	}

	assets, err := m.BundledAssets()
	if err != nil {
		return Update{}, fmt.Errorf("derive update: %w", err)
	}

	return Update{
		ID:                id,
		CommitTime:        commitTime,
		RuntimeVersion:    runtimeVersion,
		RuntimeVersionRaw: runtimeVersionRaw,
		BundleKey:         resolvedBundleKey,
		AssetURLOverride:  resolvedOverride,
		Assets:            assets,
	}, nil
}

// Digest returns the RFC 8785 canonical sha256 hex of a payload, the stable
// manifest identity external collaborators use as their dedup/cache key.
func Digest(payload manifest.RawPayload) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode manifest payload: %w", err)
	}
	canonical, err := jcs.Transform(encoded)
	if err != nil {
		return "", fmt.Errorf("canonicalize manifest payload: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// AssetURL resolves the download URL for one asset key: the manifest's
// override wins, otherwise the configured asset base URL.
func AssetURL(u Update, key string, configuration clientconfig.Config) (string, error) {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", fmt.Errorf("asset key is required")
	}
	base := u.AssetURLOverride
	if base == "" {
		base = configuration.AssetBaseURL
	}
	if base == "" {
		return "", coreerrors.Wrap(
			fmt.Errorf("no asset base URL: manifest declares no override and asset_base_url is unset"),
			coreerrors.CategoryInvalidInput,
			"asset_base_url_unset",
			"set asset_base_url in the client config",
			false,
		)
	}
	return strings.TrimRight(base, "/") + "/" + trimmedKey, nil
}
