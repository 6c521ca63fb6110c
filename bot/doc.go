// Package bot turns chat messages into commands and runs them.
//
// Flow for one message:
//
//	inbound message -> Parse -> Registry lookup -> handler
//	handler -> [memory fetch/store] -> [completion] -> reply text
//	reply text (or ReportError(err)) -> FormatReply -> Transport.Send
//
// Bot is the explicit context every handler receives: it owns the memory
// client, the completion provider, the transport and the settings. Handlers
// return errors instead of sending them; Dispatch is the only place that
// converts an error into a chat message.
//
// Each message is handled independently. Nothing is cached between commands,
// so every handler that needs memory fetches it again, and concurrent
// !remember calls race exactly as they do against the remote store.
package bot
