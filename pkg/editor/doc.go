// Package editor provides the client-side session for driving an engine
// back-end over the editorlink wire protocol.
//
// A Client is the command facade: one method per editor action, each of
// which encodes a tagged binary message and hands it to the configured
// Transport. Commands are fire-and-forget; there is no request/response
// correlation and no reply to wait for.
//
// Inbound bytes enter through Client.OnBytes, one call per complete
// message. Decoded events fan out synchronously, in subscription order, to
// the listeners registered with OnEntityPosition, OnEntitySelected,
// OnPropertyList, and OnLog. The listener registry is mutex-guarded and
// snapshots the list before iterating, so cancelling a subscription during
// a dispatch never affects the in-flight delivery.
//
//	client, err := editor.New(editor.Config{
//	    BasePath:  "/projects/demo",
//	    Transport: tr,
//	})
//	if err != nil {
//	    // ...
//	}
//
//	sub := client.OnEntitySelected(func(ev protocol.EntitySelectedEvent) {
//	    fmt.Println("selected", ev.Entity)
//	})
//	defer sub.Cancel()
//
//	client.AddEntity()
//	client.SetEntityPosition(7, 1, 2, 3)
//
// Decode failures on one inbound message are reported to the caller of
// OnBytes and never block processing of subsequent messages. Messages with
// unknown tags are counted, logged at Debug level, and otherwise ignored.
package editor
