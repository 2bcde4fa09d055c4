// Package calendar maps calendar days to the post topic suggested for them.
package calendar

import (
	"fmt"
	"time"
)

// DefaultTopic is used for days that have no entry in the table.
const DefaultTopic = "Crie um post sobre um caso de sucesso da sua clínica ou compartilhe uma dica útil!"

// Key formats t as MM-DD using the month and day of t in its own location.
func Key(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
}

// Lookup returns the topic stored under key and whether it exists.
func Lookup(key string) (string, bool) {
	topic, ok := topics[key]
	return topic, ok
}

// TopicFor returns the topic stored under key, or DefaultTopic.
func TopicFor(key string) string {
	if topic, ok := topics[key]; ok {
		return topic
	}
	return DefaultTopic
}

// LookupTopic returns the topic for the day of t.
func LookupTopic(t time.Time) string {
	return TopicFor(Key(t))
}

// Len returns the number of days with a configured topic.
func Len() int {
	return len(topics)
}
