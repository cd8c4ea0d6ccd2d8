package manifest

import (
	"errors"
	"testing"
)

func modernPayload() RawPayload {
	return RawPayload{
		"id":             "7f6e5d4c-aaaa-bbbb-cccc-ddddeeee0001",
		"createdAt":      "2024-02-01T00:00:00Z",
		"runtimeVersion": "1.0.0",
		"launchAsset": map[string]any{
			"key": "bundle-key",
			"url": "https://example.test/bundle.js",
		},
		"assets": []any{
			map[string]any{"key": "asset-a"},
		},
	}
}

func TestModernFieldMapping(t *testing.T) {
	adapter := mustResolve(t, modernPayload(), HintModern)

	releaseID, err := adapter.ReleaseID()
	if err != nil {
		t.Fatalf("releaseID: %v", err)
	}
	if releaseID != "7f6e5d4c-aaaa-bbbb-cccc-ddddeeee0001" {
		t.Fatalf("unexpected releaseID: %q", releaseID)
	}

	commitTime, err := adapter.CommitTime()
	if err != nil {
		t.Fatalf("commitTime: %v", err)
	}
	if commitTime != "2024-02-01T00:00:00Z" {
		t.Fatalf("unexpected commitTime: %q", commitTime)
	}

	runtimeVersion, err := adapter.RuntimeVersion()
	if err != nil {
		t.Fatalf("runtimeVersion: %v", err)
	}
	if runtimeVersion != "1.0.0" {
		t.Fatalf("unexpected runtimeVersion: %v", runtimeVersion)
	}

	assets, err := adapter.BundledAssets()
	if err != nil {
		t.Fatalf("bundledAssets: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected one asset, got %d", len(assets))
	}

	bundleKey, err := adapter.BundleKey()
	if err != nil {
		t.Fatalf("bundleKey: %v", err)
	}
	if bundleKey == nil || *bundleKey != "bundle-key" {
		t.Fatalf("unexpected bundleKey: %v", bundleKey)
	}
}

func TestModernAssetURLOverrideHasNoConcept(t *testing.T) {
	adapter := mustResolve(t, modernPayload(), HintModern)
	override, err := adapter.AssetURLOverride()
	if err != nil {
		t.Fatalf("assetUrlOverride: %v", err)
	}
	if override != nil {
		t.Fatalf("expected nil assetUrlOverride for modern manifests, got %q", *override)
	}
}

func TestModernMissingIDReportsBehaviorFieldName(t *testing.T) {
	adapter := mustResolve(t, RawPayload{
		"createdAt": "2024-02-01T00:00:00Z",
	}, HintModern)

	_, err := adapter.ReleaseID()
	if err == nil {
		t.Fatal("expected missing id to fail")
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %T: %v", err, err)
	}
	if missing.Field != FieldReleaseID {
		t.Fatalf("expected behavior-level field name %q, got %q", FieldReleaseID, missing.Field)
	}
}

func TestModernBundleKeyAbsentLaunchAsset(t *testing.T) {
	adapter := mustResolve(t, RawPayload{
		"id":        "u1",
		"createdAt": "2024-02-01T00:00:00Z",
	}, HintModern)

	bundleKey, err := adapter.BundleKey()
	if err != nil {
		t.Fatalf("bundleKey: %v", err)
	}
	if bundleKey != nil {
		t.Fatalf("expected nil bundleKey, got %q", *bundleKey)
	}
}

func TestModernBundleKeyLaunchAssetWithoutKey(t *testing.T) {
	adapter := mustResolve(t, RawPayload{
		"id":          "u1",
		"createdAt":   "2024-02-01T00:00:00Z",
		"launchAsset": map[string]any{"url": "https://example.test/bundle.js"},
	}, HintModern)

	bundleKey, err := adapter.BundleKey()
	if err != nil {
		t.Fatalf("bundleKey: %v", err)
	}
	if bundleKey != nil {
		t.Fatalf("expected nil bundleKey, got %q", *bundleKey)
	}
}

func TestModernBundleKeyMalformedLaunchAsset(t *testing.T) {
	adapter := mustResolve(t, RawPayload{
		"id":          "u1",
		"createdAt":   "2024-02-01T00:00:00Z",
		"launchAsset": "not-a-mapping",
	}, HintModern)

	_, err := adapter.BundleKey()
	if err == nil {
		t.Fatal("expected malformed launchAsset to fail")
	}
	var malformed *MalformedFieldError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedFieldError, got %T: %v", err, err)
	}
	if malformed.Field != FieldBundleKey {
		t.Fatalf("unexpected field name: %q", malformed.Field)
	}
	if malformed.Expected != "mapping" {
		t.Fatalf("unexpected expected type: %q", malformed.Expected)
	}
}

func TestModernAssetsAbsentVersusDeclaredEmpty(t *testing.T) {
	withoutKey := mustResolve(t, RawPayload{
		"id":        "u1",
		"createdAt": "2024-02-01T00:00:00Z",
	}, HintModern)
	assets, err := withoutKey.BundledAssets()
	if err != nil {
		t.Fatalf("bundledAssets: %v", err)
	}
	if assets != nil {
		t.Fatal("expected nil slice when assets was never declared")
	}

	withEmpty := mustResolve(t, RawPayload{
		"id":        "u1",
		"createdAt": "2024-02-01T00:00:00Z",
		"assets":    []any{},
	}, HintModern)
	assets, err = withEmpty.BundledAssets()
	if err != nil {
		t.Fatalf("bundledAssets: %v", err)
	}
	if assets == nil || len(assets) != 0 {
		t.Fatalf("expected declared empty list, got %v", assets)
	}
}
