package parser

import "strings"

// SelectScope returns the portion of content lexically inside the outermost
// brace pair of the named class. An empty targetClass returns content
// unchanged. When the class header is never found the result is empty, so
// downstream extraction yields nothing; this is a silent miss, not an error.
//
// Detection is a substring check on each line: it must contain both "class"
// and the target name. That can false-positive on comments or forward
// declarations that mention both; the trade-off is accepted to keep the
// scan purely lexical.
func SelectScope(content, targetClass string) string {
	if targetClass == "" {
		return content
	}

	var counter BraceCounter
	var body []string
	baseline := 0
	found := false

	for _, line := range strings.Split(content, "\n") {
		// Count before the header check so the depth trace stays in
		// declaration order.
		counter.Process(line)

		if !found {
			if !strings.Contains(line, "class") || !strings.Contains(line, targetClass) {
				continue
			}
			found = true
			baseline = counter.Depth()
			if i := strings.Index(line, "{"); i >= 0 {
				// The class body starts on the header line itself;
				// keep what follows the opening brace.
				body = append(body, line[i+1:])
			} else {
				// Opening brace comes on a later line.
				baseline++
			}
			continue
		}

		if counter.Depth() < baseline {
			// The class body closed; the closing line is excluded.
			break
		}
		body = append(body, line)
	}

	return strings.Join(body, "\n")
}
