package payload

import "github.com/tiktoken-go/tokenizer"

// EstimateTokens returns the approximate number of tokens the given text
// occupies in the o200k_base encoding used by current OpenAI models.
func EstimateTokens(text string) (int, error) {
	enc, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return 0, err
	}
	ids, _, err := enc.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
