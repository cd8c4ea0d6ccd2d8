package manifest

// RawPayload is a manifest as received over the wire, already parsed from its
// serialization format into a JSON-shaped tree: values are string, float64,
// bool, nil, []any, or map[string]any. An adapter deep-copies the payload it
// is handed, so mutating the caller's map after construction has no effect.
type RawPayload = map[string]any

func clonePayload(payload RawPayload) RawPayload {
	if payload == nil {
		return nil
	}
	cloned, _ := cloneValue(payload).(map[string]any)
	return cloned
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, element := range typed {
			copied[key] = cloneValue(element)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for index, element := range typed {
			copied[index] = cloneValue(element)
		}
		return copied
	default:
		return typed
	}
}
