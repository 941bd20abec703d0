// Package intake is the headless client side of the referral form: a form
// controller that prefills remembered fields, resolves postal codes as the
// zip input changes, keeps the phone field in national display format and
// assembles the final multipart submission.
//
// It holds no rendering concerns. Embedders own the widgets and feed
// keystrokes in through the setters; the controller owns normalization,
// lookup debouncing and the submit lifecycle.
package intake
