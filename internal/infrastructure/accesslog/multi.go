package accesslog

import "errors"

// Multi fans an entry out to every sink and joins their errors.
type Multi []Sink

func (m Multi) Record(entry Entry) error {
	var result error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Record(entry); err != nil {
			result = errors.Join(result, err)
		}
	}
	return result
}
