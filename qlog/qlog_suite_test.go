package qlog

import (
	"encoding/json"
	"os"
	"strconv"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQlog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "qlog Suite")
}

func scaleDuration(d time.Duration) time.Duration {
	scaleFactor := 1
	if f, err := strconv.Atoi(os.Getenv("TIMESCALE_FACTOR")); err == nil { // parsing "" errors, so this works fine if the env is not set
		scaleFactor = f
	}
	Expect(scaleFactor).ToNot(BeZero())
	return time.Duration(scaleFactor) * d
}

func checkEncoding(data []byte, expected map[string]interface{}) {
	// unmarshal the data
	m := make(map[string]interface{})
	ExpectWithOffset(1, json.Unmarshal(data, &m)).To(Succeed())
	ExpectWithOffset(1, m).To(HaveLen(len(expected)))
	for key, value := range expected {
		switch v := value.(type) {
		case string:
			ExpectWithOffset(1, m).To(HaveKeyWithValue(key, v))
		case int:
			ExpectWithOffset(1, m).To(HaveKeyWithValue(key, float64(v)))
		case float64:
			ExpectWithOffset(1, m).To(HaveKeyWithValue(key, v))
		case bool:
			ExpectWithOffset(1, m).To(HaveKeyWithValue(key, v))
		default:
			Fail("unexpected type")
		}
	}
}
