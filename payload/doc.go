// SPDX-License-Identifier: EPL-2.0

// Package payload defines how firmware images are read into memory.
//
// A Loader turns an input stream into the flat byte image that gets
// encoded. Loaders are looked up by format key ("bin", "hex") through a
// Registry; the concrete loaders live under formats/.
package payload
