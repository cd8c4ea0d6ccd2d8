package manifest

// Wire keys of the modern (protocol v1) manifest shape.
const (
	modernKeyID             = "id"
	modernKeyCreatedAt      = "createdAt"
	modernKeyAssets         = "assets"
	modernKeyRuntimeVersion = "runtimeVersion"
	modernKeyLaunchAsset    = "launchAsset"
	modernKeyLaunchAssetKey = "key"
)

// modernAdapter reads the modern manifest shape, mapping its wire keys onto
// the behavior-level fields. The modern shape has no asset-URL-override
// concept, so AssetURLOverride is always nil.
type modernAdapter struct {
	baseAdapter
}

func newModernAdapter(payload RawPayload) *modernAdapter {
	return &modernAdapter{baseAdapter: newBaseAdapter(payload)}
}

func (m *modernAdapter) ReleaseID() (string, error) {
	return requiredField[string](m.baseAdapter, modernKeyID, FieldReleaseID)
}

func (m *modernAdapter) CommitTime() (string, error) {
	return requiredField[string](m.baseAdapter, modernKeyCreatedAt, FieldCommitTime)
}

func (m *modernAdapter) BundledAssets() ([]AssetDescriptor, error) {
	return optionalSequence(m.baseAdapter, modernKeyAssets, FieldBundledAssets)
}

func (m *modernAdapter) RuntimeVersion() (any, error) {
	value, found := m.lookup(modernKeyRuntimeVersion)
	if !found || value == nil {
		return nil, nil
	}
	return value, nil
}

// BundleKey reads the launch asset's key. A declared launch asset must be a
// mapping; a launch asset without a key resolves to nil, deferring default
// derivation to the consumer.
func (m *modernAdapter) BundleKey() (*string, error) {
	launchAsset, err := optionalField[map[string]any](m.baseAdapter, modernKeyLaunchAsset, FieldBundleKey)
	if err != nil {
		return nil, err
	}
	if launchAsset == nil {
		return nil, nil
	}
	key, found := (*launchAsset)[modernKeyLaunchAssetKey]
	if !found || key == nil {
		return nil, nil
	}
	typed, err := coerceField[string](FieldBundleKey, key)
	if err != nil {
		return nil, err
	}
	return &typed, nil
}

func (m *modernAdapter) AssetURLOverride() (*string, error) {
	return nil, nil
}
