// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavglitch/audio"
	"github.com/ik5/wavglitch/formats/vorbis"
)

// Example decodes an Ogg Vorbis file into a buffer.
func Example() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channels, %d frames\n", buf.SampleRate, buf.NumChannels(), buf.Frames())
}
