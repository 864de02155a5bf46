package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
	"github.com/xiaocenxiaocen/huffmantree/pkg/logger"
	"github.com/xiaocenxiaocen/huffmantree/pkg/wfl"
)

var log = logger.New("wflhuff")

func main() {
	in := flag.String("in", "wfl_gpu.dat", "float32 sample file")
	n := flag.Int("n", 0, "number of samples to read (0 = whole file)")
	streamOut := flag.String("stream", "stream_huff.dat", "packed bitstream output")
	reconOut := flag.String("out", "wfl_reconstr.dat", "reconstructed samples output")
	printCodes := flag.Bool("codes", false, "print the code table")
	printTree := flag.Bool("tree", false, "print the tree")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	logger.Setup(*level)
	if err := run(*in, *n, *streamOut, *reconOut, *printCodes, *printTree); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(in string, n int, streamOut, reconOut string, printCodes, printTree bool) error {
	samples, err := wfl.ReadSamples(in, n)
	if err != nil {
		return err
	}
	buf := wfl.Float32sToBytes(samples)

	sess, err := huffman.NewSession(buf)
	if err != nil {
		return fmt.Errorf("generate huffman tree: %w", err)
	}
	defer sess.Release()

	if err := sess.Tree().Verify(sess.Codes()); err != nil {
		return err
	}
	if printCodes {
		for i := 0; i < huffman.AlphabetSize; i++ {
			fmt.Printf("%d\t%s\n", huffman.IndexSymbol(i), sess.Codes().Index(i))
		}
	}
	if printTree {
		if err := sess.Tree().Dump(os.Stdout); err != nil {
			return err
		}
	}

	stream, err := sess.Encode(buf)
	if err != nil {
		return err
	}
	st := huffman.NewStats(len(buf), stream)
	log.Infof("bytes before compress: %d", st.InputBytes)
	log.Infof("bytes after compress: %d (%d bits, ratio %.4f)", st.PackedBytes, st.EncodedBits, st.Ratio)
	if err := wfl.WriteStream(streamOut, stream.Packed); err != nil {
		return err
	}

	decoded, err := sess.Decode(stream, len(buf))
	if err != nil {
		return err
	}
	recon, err := wfl.BytesToFloat32s(decoded)
	if err != nil {
		return err
	}
	maxErr, idx, err := wfl.MaxAbsDeviation(samples, recon)
	if err != nil {
		return err
	}
	log.Infof("reconstruction error: %g (sample %d)", maxErr, idx)
	return wfl.WriteSamples(reconOut, recon)
}
