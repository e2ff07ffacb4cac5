// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files on top of
// github.com/jfreymuth/oggvorbis.
//
// Vorbis has no integer resolution of its own. The source reports a bit
// depth of 16, so a glitched Vorbis file is written back as 16-bit WAV.
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src, 0)
package vorbis
