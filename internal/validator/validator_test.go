package validator_test

import (
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/validator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validator", func() {
	var (
		v   validator.Validator
		raw model.RawTransaction
		out validator.Outcome
	)

	BeforeEach(func() {
		v = validator.New()
		to := "0x000000000000000000000000000000000000bbbb"
		raw = model.RawTransaction{
			BlockNumber:      100,
			BlockHash:        "0x" + repeat("a", 64),
			TransactionHash:  "0x" + repeat("b", 64),
			TransactionIndex: 0,
			FromAddress:      "0x000000000000000000000000000000000000aaaa",
			ToAddress:        &to,
			Amount:           "0",
		}
	})

	JustBeforeEach(func() {
		out = v.Validate(raw)
	})

	When("every field is well-formed", func() {
		It("accepts the record", func() {
			Expect(out.OK).To(BeTrue())
			Expect(out.Reasons).To(BeEmpty())
			Expect(out.Record.Amount.String()).To(Equal("0"))
		})
	})

	When("to_address is absent", func() {
		BeforeEach(func() { raw.ToAddress = nil })

		It("accepts it as contract creation", func() {
			Expect(out.OK).To(BeTrue())
			Expect(out.Record.ToAddress).To(BeNil())
		})
	})

	When("to_address is the empty string", func() {
		BeforeEach(func() {
			empty := ""
			raw.ToAddress = &empty
		})

		It("rejects the record", func() {
			Expect(out.OK).To(BeFalse())
			Expect(out.Reasons).To(ContainElement(HaveField("Reason", ContainSubstring("to_address"))))
		})
	})

	When("amount is a negative integer", func() {
		BeforeEach(func() { raw.Amount = "-1" })

		It("rejects the record", func() {
			Expect(out.OK).To(BeFalse())
			Expect(out.Reasons).To(ContainElement(HaveField("Reason", ContainSubstring("amount"))))
		})
	})

	When("amount has a fractional part", func() {
		BeforeEach(func() { raw.Amount = "1.5" })

		It("rejects the record", func() {
			Expect(out.OK).To(BeFalse())
		})
	})

	When("block_number is zero", func() {
		BeforeEach(func() { raw.BlockNumber = 0 })

		It("accepts it as the genesis floor", func() {
			Expect(out.OK).To(BeTrue())
		})
	})

	When("block_hash is malformed", func() {
		BeforeEach(func() { raw.BlockHash = "not-a-hash" })

		It("reports the failure and still evaluates every other field", func() {
			raw.Amount = "-5"
			out = v.Validate(raw)
			Expect(out.OK).To(BeFalse())
			Expect(out.Reasons).To(ContainElement(HaveField("Reason", ContainSubstring("block_hash"))))
			Expect(out.Reasons).To(ContainElement(HaveField("Reason", ContainSubstring("amount"))))
		})
	})

	When("multiple records are validated in a batch", func() {
		It("attaches the block_number of the failing record to its reason", func() {
			raw.BlockNumber = 555
			raw.Amount = "-1"
			out = v.Validate(raw)
			Expect(out.Reasons[0].BlockNumber).To(Equal(int64(555)))
		})
	})
})

func repeat(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}
