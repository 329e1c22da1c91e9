package thanks

import "github.com/Wikia/thanksmetoo/internal/domain"

// markSent flags key as thanked in req's session under every key format.
func (s *Service) markSent(req Request, key domain.ThanksKey) {
	flags := req.session()
	for _, k := range key.SessionKeys() {
		flags.Set(k)
	}
}
