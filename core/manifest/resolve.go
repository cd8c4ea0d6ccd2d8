package manifest

import (
	"fmt"
	"strings"

	"github.com/overair/overair/core/schema/validate"
)

// Hint is the transport-level protocol-version discriminator the fetch
// collaborator extracts alongside a manifest payload. Servers predating
// protocol versioning send none.
type Hint string

const (
	HintNone   Hint = ""
	HintLegacy Hint = "0"
	HintModern Hint = "1"
)

// Discriminating wire keys probed when no hint accompanies the payload.
// Modern markers are checked before legacy markers.
var (
	modernMarkerKeys = []string{modernKeyCreatedAt, modernKeyLaunchAsset}
	legacyMarkerKeys = []string{FieldReleaseID, FieldCommitTime, "sdkVersion", "bundleUrl"}
)

// Resolve selects and constructs the adapter for a fetched payload. An
// explicit known hint is trusted as-is, so adapter construction never fails
// and field problems surface only on access. Without a hint the payload is
// sniffed on discriminating keys; a payload matching no known variant fails
// with UnrecognizedManifestError. Resolve is deterministic for identical
// inputs. Onboarding a new manifest generation means one new adapter and one
// new branch here, with no consumer change.
func Resolve(payload RawPayload, hint Hint) (RawManifest, error) {
	switch hint {
	case HintLegacy:
		return newLegacyAdapter(payload), nil
	case HintModern:
		return newModernAdapter(payload), nil
	case HintNone:
	default:
		return nil, unrecognizedManifestError(hint, "")
	}

	for _, key := range modernMarkerKeys {
		if _, found := payload[key]; found {
			return newModernAdapter(payload), nil
		}
	}
	for _, key := range legacyMarkerKeys {
		if _, found := payload[key]; found {
			return newLegacyAdapter(payload), nil
		}
	}
	return nil, unrecognizedManifestError(HintNone, variantDiagnostics(payload))
}

// variantDiagnostics runs each variant's schema over the rejected payload so
// the error explains how far the payload is from every known shape.
func variantDiagnostics(payload RawPayload) string {
	details := []string{"no variant marker keys present"}
	for _, variant := range []validate.Variant{validate.VariantModern, validate.VariantLegacy} {
		if err := validate.CheckVariant(payload, variant); err != nil {
			details = append(details, fmt.Sprintf("%s: %v", variant, err))
		}
	}
	return strings.Join(details, "; ")
}
