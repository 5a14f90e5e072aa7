// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package editor implements the editing services over an svg document: the
reactive document store, the selection manager, the linear undo / redo
history of reversible operations, and the gesture engine that collapses
continuous pointer interactions into single committed operations.

All services are explicit objects owned by an [Editor], passed by
reference, so multiple documents and test runs can coexist without
ambient state. Everything is single-threaded and event-driven: store
notifications are delivered synchronously, in subscription order, after
each field replacement.
*/
package editor
