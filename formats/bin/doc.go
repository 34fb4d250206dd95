// SPDX-License-Identifier: EPL-2.0

// Package bin loads raw binary images: the input bytes are the image.
package bin
