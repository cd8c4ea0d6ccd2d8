package manifest

// LegacyRuntimeVersionAliases lists the historical wire keys legacy server
// generations used for the runtime version, probed in order; the first key
// present with a non-null value wins. The list and its order are a
// compatibility contract confirmed against historical payload samples: the
// dedicated runtimeVersion key superseded the older sdkVersion key.
var LegacyRuntimeVersionAliases = []string{"runtimeVersion", "sdkVersion"}

// legacyAdapter reads the legacy manifest shape, whose wire keys coincide
// with the behavior-level field names. Construction never fails; every
// failure is scoped to the accessed field.
type legacyAdapter struct {
	baseAdapter
}

func newLegacyAdapter(payload RawPayload) *legacyAdapter {
	return &legacyAdapter{baseAdapter: newBaseAdapter(payload)}
}

func (m *legacyAdapter) ReleaseID() (string, error) {
	return requiredField[string](m.baseAdapter, FieldReleaseID, FieldReleaseID)
}

func (m *legacyAdapter) CommitTime() (string, error) {
	return requiredField[string](m.baseAdapter, FieldCommitTime, FieldCommitTime)
}

func (m *legacyAdapter) BundledAssets() ([]AssetDescriptor, error) {
	return optionalSequence(m.baseAdapter, FieldBundledAssets, FieldBundledAssets)
}

func (m *legacyAdapter) RuntimeVersion() (any, error) {
	for _, alias := range LegacyRuntimeVersionAliases {
		value, found := m.lookup(alias)
		if found && value != nil {
			return value, nil
		}
	}
	return nil, nil
}

func (m *legacyAdapter) BundleKey() (*string, error) {
	return optionalField[string](m.baseAdapter, FieldBundleKey, FieldBundleKey)
}

func (m *legacyAdapter) AssetURLOverride() (*string, error) {
	return optionalField[string](m.baseAdapter, FieldAssetURLOverride, FieldAssetURLOverride)
}
