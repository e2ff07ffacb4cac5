// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding on top of
// github.com/hajimehoshi/go-mp3.
//
// # Output Format
//
//   - Sample format: float32 in [-1, 1)
//   - Channels: always 2; mono files are duplicated by go-mp3
//   - Bit depth: reported as 16, the decoder's native resolution
//   - Sample rate: that of the MP3 file
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src, 0)
//
// Use audio.NewMonoMixer to fold the stereo output down before
// processing when the source file was mono.
package mp3
