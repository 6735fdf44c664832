package config_test

import (
	"os"
	"path/filepath"

	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	var dataDir string

	BeforeEach(func() {
		var err error
		dataDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).ToNot(HaveOccurred())

		DeferCleanup(func() {
			_ = os.RemoveAll(dataDir)
		})
	})

	writeConfig := func(contents string) {
		err := os.WriteFile(filepath.Join(dataDir, "config.json"), []byte(contents), 0o600)
		Expect(err).ToNot(HaveOccurred())
	}

	It("decodes all parameters", func() {
		writeConfig(`{
			"parameters": {
				"address": "0xabc",
				"#api_key": "sekrit",
				"start_block": 100,
				"end_block": 200,
				"page": 3,
				"offset": 25,
				"sort": "desc",
				"debug": true
			}
		}`)

		cfg, err := config.Load(dataDir)
		Expect(err).ToNot(HaveOccurred())

		params := cfg.Parameters
		Expect(params.Address).To(Equal("0xabc"))
		Expect(params.APIKey).To(Equal("sekrit"))
		Expect(params.StartBlock).To(HaveValue(Equal(100)))
		Expect(params.EndBlock).To(HaveValue(Equal(200)))
		Expect(params.Page).To(HaveValue(Equal(3)))
		Expect(params.Offset).To(HaveValue(Equal(25)))
		Expect(params.Sort).To(HaveValue(Equal("desc")))
		Expect(params.Debug).To(BeTrue())
	})

	It("leaves absent optional parameters nil", func() {
		writeConfig(`{"parameters": {"address": "0xabc", "#api_key": "sekrit"}}`)

		cfg, err := config.Load(dataDir)
		Expect(err).ToNot(HaveOccurred())

		params := cfg.Parameters
		Expect(params.StartBlock).To(BeNil())
		Expect(params.EndBlock).To(BeNil())
		Expect(params.Page).To(BeNil())
		Expect(params.Offset).To(BeNil())
		Expect(params.Sort).To(BeNil())
		Expect(params.Debug).To(BeFalse())
	})

	It("distinguishes an explicit zero from an absent key", func() {
		writeConfig(`{"parameters": {"address": "0xabc", "#api_key": "sekrit", "start_block": 0}}`)

		cfg, err := config.Load(dataDir)
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.Parameters.StartBlock).To(HaveValue(Equal(0)))
		Expect(cfg.Parameters.EndBlock).To(BeNil())
	})

	It("returns an error when config.json does not exist", func() {
		_, err := config.Load(dataDir)
		Expect(err).To(HaveOccurred())
	})

	It("returns an error on malformed JSON", func() {
		writeConfig(`{"parameters": {`)

		_, err := config.Load(dataDir)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ValidateRequired", func() {
	It("accepts a configuration with all required parameters", func() {
		params := &config.Parameters{Address: "0xabc", APIKey: "sekrit"}
		Expect(params.ValidateRequired()).To(Succeed())
	})

	It("reports a missing address", func() {
		params := &config.Parameters{APIKey: "sekrit"}
		err := params.ValidateRequired()
		Expect(err).To(MatchError(ContainSubstring("address")))
	})

	It("reports a missing API key", func() {
		params := &config.Parameters{Address: "0xabc"}
		err := params.ValidateRequired()
		Expect(err).To(MatchError(ContainSubstring("#api_key")))
	})

	It("reports all missing parameters at once", func() {
		params := &config.Parameters{}
		err := params.ValidateRequired()
		Expect(err).To(MatchError(ContainSubstring("address")))
		Expect(err).To(MatchError(ContainSubstring("#api_key")))
	})

	It("does not include the API key value in any error", func() {
		params := &config.Parameters{APIKey: "sekrit"}
		err := params.ValidateRequired()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).ToNot(ContainSubstring("sekrit"))
	})
})

var _ = Describe("OutTablePath", func() {
	It("resolves the table path within the data directory", func() {
		path := config.OutTablePath("/data", "output.csv")
		Expect(path).To(Equal(filepath.Join("/data", "out", "tables", "output.csv")))
	})
})
