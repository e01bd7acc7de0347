package qlog

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("qlog dir", Serial, func() {
	var (
		originalQlogDir string
		tempDir         string
	)

	BeforeEach(func() {
		originalQlogDir = QlogDir
		var err error
		tempDir, err = os.MkdirTemp("", "qlog_dir_test")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		QlogDir = originalQlogDir
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("doesn't create a tracer if the qlog directory is not set", func() {
		QlogDir = ""
		Expect(DefaultConnectionTracer("cafebabe")).To(BeNil())
	})

	It("writes a qlog file named after the connection", func() {
		QlogDir = tempDir
		tracer := DefaultConnectionTracer("cafebabe")
		Expect(tracer).ToNot(BeNil())
		tracer.UpdatedBackoff(2)
		tracer.Close()

		entries, err := os.ReadDir(tempDir)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("cafebabe.qlog"))

		data, err := os.ReadFile(filepath.Join(tempDir, "cafebabe.qlog"))
		Expect(err).ToNot(HaveOccurred())
		m := make(map[string]interface{})
		Expect(json.Unmarshal(data, &m)).To(Succeed())
		Expect(m).To(HaveKeyWithValue("qlog_version", "draft-02"))
	})
})
