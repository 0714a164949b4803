package metadata

import "strings"

// MessageGroup holds the messages of one trait
// namespace, in metadata order.
type MessageGroup struct {
	Namespace string
	Messages  []EntryPoint
}

// Group partitions messages by namespace. Messages
// without "::" are inherent. Groups are ordered by
// the first appearance of their namespace. A label
// with more than one "::" or an empty side is a
// *LabelError.
func Group(messages []EntryPoint) ([]EntryPoint, []MessageGroup, error) {
	var (
		inherent []EntryPoint
		groups   []MessageGroup
		index    = map[string]int{}
	)
	for _, m := range messages {
		switch strings.Count(m.Label, "::") {
		case 0:
			inherent = append(inherent, m)
		case 1:
			ns := m.Namespace()
			if ns == "" || m.Method() == "" {
				return nil, nil, &LabelError{Label: m.Label, Reason: "empty namespace or method"}
			}
			i, ok := index[ns]
			if !ok {
				i = len(groups)
				index[ns] = i
				groups = append(groups, MessageGroup{Namespace: ns})
			}
			groups[i].Messages = append(groups[i].Messages, m)
		default:
			return nil, nil, &LabelError{Label: m.Label, Reason: "nested namespaces are not supported"}
		}
	}
	return inherent, groups, nil
}
