package compat

import (
	"fmt"
	"strings"

	"github.com/overair/overair/core/clientconfig"
	coreerrors "github.com/overair/overair/core/errors"
	"github.com/overair/overair/core/manifest"
)

// Supported lists the runtime versions and legacy SDK versions the installed
// client is able to load.
type Supported struct {
	RuntimeVersions []string
	SDKVersions     []string
}

// FromConfig builds the supported set from the client configuration.
func FromConfig(configuration clientconfig.Config) Supported {
	supported := Supported{}
	if configuration.RuntimeVersion != "" {
		supported.RuntimeVersions = []string{configuration.RuntimeVersion}
	}
	if configuration.SDKVersion != "" {
		supported.SDKVersions = []string{configuration.SDKVersion}
	}
	return supported
}

// Check reports whether the manifest's declared runtime requirement is
// satisfied by the installed client. A manifest declaring no runtime version
// predates runtime versioning and is accepted. The declared value may be a
// plain version string, a comma-separated list (the legacy SDK convention),
// or a sequence of version strings. Incompatibility is a classified error so
// callers get diagnostics without a second lookup.
func Check(m manifest.RawManifest, supported Supported) error {
	declared, err := m.RuntimeVersion()
	if err != nil {
		return fmt.Errorf("read runtime version: %w", err)
	}
	if declared == nil {
		return nil
	}

	candidates, err := declaredVersions(declared)
	if err != nil {
		return err
	}
	accepted := make(map[string]struct{}, len(supported.RuntimeVersions)+len(supported.SDKVersions))
	for _, version := range supported.RuntimeVersions {
		accepted[strings.TrimSpace(version)] = struct{}{}
	}
	for _, version := range supported.SDKVersions {
		accepted[strings.TrimSpace(version)] = struct{}{}
	}
	for _, candidate := range candidates {
		if _, ok := accepted[candidate]; ok {
			return nil
		}
	}
	return coreerrors.Wrap(
		fmt.Errorf(
			"manifest requires runtime %s; client supports runtime %v / sdk %v",
			strings.Join(candidates, "|"), supported.RuntimeVersions, supported.SDKVersions,
		),
		coreerrors.CategoryRuntimeIncompatible,
		"runtime_incompatible",
		"the installed client cannot load this update; keep the current bundle",
		false,
	)
}

func declaredVersions(declared any) ([]string, error) {
	switch typed := declared.(type) {
	case string:
		parts := strings.Split(typed, ",")
		versions := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				versions = append(versions, trimmed)
			}
		}
		if len(versions) == 0 {
			return nil, invalidDeclaration(declared)
		}
		return versions, nil
	case []any:
		versions := make([]string, 0, len(typed))
		for _, element := range typed {
			version, ok := element.(string)
			if !ok {
				return nil, invalidDeclaration(declared)
			}
			if trimmed := strings.TrimSpace(version); trimmed != "" {
				versions = append(versions, trimmed)
			}
		}
		if len(versions) == 0 {
			return nil, invalidDeclaration(declared)
		}
		return versions, nil
	default:
		return nil, invalidDeclaration(declared)
	}
}

func invalidDeclaration(declared any) error {
	return coreerrors.Wrap(
		fmt.Errorf("manifest declares an uninterpretable runtime version: %v", declared),
		coreerrors.CategoryMalformedField,
		"runtime_version_uninterpretable",
		"verify the manifest was produced by a supported server generation",
		false,
	)
}
