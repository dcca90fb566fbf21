package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mvmsim/loader"
	"github.com/sarchlab/mvmsim/rom"
)

func TestLoader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Loader Suite")
}

var _ = Describe("ParseHexImage", func() {
	It("should parse whitespace-separated hex bytes", func() {
		image, err := loader.ParseHexImage("00 01 ff\n10 20", 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(image).To(Equal([]byte{0x00, 0x01, 0xFF, 0x10, 0x20, 0, 0, 0}))
	})

	It("should ignore // comments", func() {
		text := "// header comment\n01 02 // trailing\n03\n"
		image, err := loader.ParseHexImage(text, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(image).To(Equal([]byte{0x01, 0x02, 0x03, 0}))
	})

	It("should honor @addr directives", func() {
		text := "@4 aa bb\n@0 11\n"
		image, err := loader.ParseHexImage(text, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(image).To(Equal([]byte{0x11, 0, 0, 0, 0xAA, 0xBB, 0, 0}))
	})

	It("should zero-fill entries not covered by the text", func() {
		image, err := loader.ParseHexImage("ff", 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(image).To(Equal([]byte{0xFF, 0, 0, 0}))
	})

	It("should reject values wider than a byte", func() {
		_, err := loader.ParseHexImage("1ff", 4)
		Expect(err).To(HaveOccurred())
	})

	It("should reject non-hex tokens with the line number", func() {
		_, err := loader.ParseHexImage("00\nzz\n", 4)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("line 2"))
	})

	It("should reject an @addr outside the image", func() {
		_, err := loader.ParseHexImage("@10 00", 8)
		Expect(err).To(HaveOccurred())
	})

	It("should reject more entries than the image holds", func() {
		_, err := loader.ParseHexImage("00 01 02 03 04", 4)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Image files", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "mvmsim-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	writeFile := func(name string, data []byte) string {
		path := filepath.Join(tempDir, name)
		Expect(os.WriteFile(path, data, 0o644)).To(Succeed())
		return path
	}

	Describe("LoadVector", func() {
		It("should load a hex image by extension", func() {
			path := writeFile("vec.hex", []byte("@0 01 02 03"))
			vector, err := loader.LoadVector(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(vector).To(HaveLen(rom.VectorWords))
			Expect(vector[:4]).To(Equal([]byte{1, 2, 3, 0}))
		})

		It("should load a raw binary image of exact size", func() {
			raw := make([]byte, rom.VectorWords)
			raw[63] = 9
			path := writeFile("vec.bin", raw)
			vector, err := loader.LoadVector(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(vector[63]).To(Equal(uint8(9)))
		})

		It("should reject a short binary image", func() {
			path := writeFile("vec.bin", make([]byte, 10))
			_, err := loader.LoadVector(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoadMatrix", func() {
		It("should load a full 4096-entry binary image", func() {
			raw := make([]byte, rom.MatrixWords)
			path := writeFile("mat.bin", raw)
			matrix, err := loader.LoadMatrix(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(matrix).To(HaveLen(rom.MatrixWords))
		})

		It("should report a missing file", func() {
			_, err := loader.LoadMatrix(filepath.Join(tempDir, "nope.hex"))
			Expect(err).To(HaveOccurred())
		})
	})
})
