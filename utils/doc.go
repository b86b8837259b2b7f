// SPDX-License-Identifier: EPL-2.0

// Package utils holds scalar sample helpers shared by the audio pipeline.
package utils
