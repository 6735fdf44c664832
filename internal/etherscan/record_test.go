package etherscan_test

import (
	"encoding/json"

	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/etherscan"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Record", func() {
	It("preserves the key order of the source document", func() {
		src := `{"timestamp":"100","hash":"0x1","from":"0xaaa","to":"0xbbb","value":"5"}`

		var record etherscan.Record
		Expect(json.Unmarshal([]byte(src), &record)).To(Succeed())

		Expect(record.Names()).To(Equal([]string{"timestamp", "hash", "from", "to", "value"}))
	})

	It("returns field values by name", func() {
		var record etherscan.Record
		Expect(json.Unmarshal([]byte(`{"timestamp":"100","hash":"0x1"}`), &record)).To(Succeed())

		value, found := record.Get("hash")
		Expect(found).To(BeTrue())
		Expect(value).To(Equal("0x1"))

		_, found = record.Get("nonce")
		Expect(found).To(BeFalse())
	})

	It("renders non-string scalars as their literal text", func() {
		var record etherscan.Record
		Expect(json.Unmarshal([]byte(`{"confirmations":12,"isError":false,"memo":null}`), &record)).To(Succeed())

		confirmations, _ := record.Get("confirmations")
		Expect(confirmations).To(Equal("12"))

		isError, _ := record.Get("isError")
		Expect(isError).To(Equal("false"))

		memo, _ := record.Get("memo")
		Expect(memo).To(Equal(""))
	})

	It("rejects non-object values", func() {
		var record etherscan.Record
		Expect(json.Unmarshal([]byte(`["timestamp"]`), &record)).ToNot(Succeed())
	})
})
