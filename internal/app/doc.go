// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the bookmark-keeper server from its layers.
//
// The wiring order is storage, services, handlers and finally the HTTP
// server. [App.Run] blocks until the run context is cancelled and releases
// the database connection on the way out.
package app
