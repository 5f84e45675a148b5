// Package conversation holds the transcript for a single chat widget instance.
//
// # Overview
//
// A Log is an ordered, append-only sequence of Messages authored by either
// the user or the bot. The widget controller is the only writer; presentation
// code reads snapshots via All. Messages are immutable once appended and are
// never reordered or deduplicated.
//
// # Usage
//
//	log := conversation.NewLog()
//	log.Append(conversation.NewMessage("hello", conversation.SenderUser))
//	for _, msg := range log.All() {
//		fmt.Println(msg.Text)
//	}
package conversation
