package manifest

// Behavior-level field names carried by field-scoped errors, shared across
// variants regardless of each variant's wire keys.
const (
	FieldReleaseID        = "releaseID"
	FieldCommitTime       = "commitTime"
	FieldBundledAssets    = "bundledAssets"
	FieldRuntimeVersion   = "runtimeVersion"
	FieldBundleKey        = "bundleKey"
	FieldAssetURLOverride = "assetUrlOverride"
)

// AssetDescriptor is one entry of a manifest's bundled-asset list. Its shape
// is owned by the asset-fetching consumer; this layer guarantees only
// presence/absence and ordering.
type AssetDescriptor any

// RawManifest is the uniform read surface every manifest variant provides.
// All accessors are pure, idempotent, and may be called in any order;
// failures are scoped to the accessed field and never affect other fields.
type RawManifest interface {
	// ReleaseID returns the opaque release identifier. Required.
	ReleaseID() (string, error)

	// CommitTime returns the commit timestamp exactly as stored, with no
	// truncation or normalization. Required; parsing is a consumer concern.
	CommitTime() (string, error)

	// BundledAssets returns the declared asset list in payload order. A nil
	// slice means the manifest never declared the field; a non-nil empty
	// slice means it declared an empty list. The two are distinct states.
	BundledAssets() ([]AssetDescriptor, error)

	// RuntimeVersion returns the declared runtime version without coercion,
	// or nil when unspecified. The value may be a plain string or a
	// structured constraint; interpretation belongs to the consumer.
	RuntimeVersion() (any, error)

	// BundleKey returns the declared bundle key, or nil when absent.
	// Default derivation from the release identifier is a consumer concern.
	BundleKey() (*string, error)

	// AssetURLOverride returns the declared asset URL override, or nil when
	// absent; consumers fall back to their configured asset base URL.
	AssetURLOverride() (*string, error)
}
