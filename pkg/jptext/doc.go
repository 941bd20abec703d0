// Package jptext normalizes Japanese form input before it is validated,
// formatted or sent to lookup services.
//
// Japanese users routinely type digits in full-width form (１２３) and use a
// wide range of hyphen-like glyphs (長音 ー, 全角ハイフン －, en/em dashes) in
// postal codes and phone numbers. The helpers in this package fold those
// variants into plain ASCII so the rest of the pipeline only ever deals with
// half-width digits.
//
// All helpers are stateless and safe for concurrent use.
package jptext
