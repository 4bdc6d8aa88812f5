// Package naming derives MongoDB collection names from Go type names and
// free-form schema names.
//
// A name is split into word tokens the way identifiers are usually written:
// lowercase runs, capitalized words, acronyms and digit groups. Acronyms stop
// right before the next capitalized word, so "HTTPRequestLog" becomes
// "HTTP", "Request", "Log". Anything that is not an ASCII letter or digit
// separates tokens and is dropped. Latin diacritics are folded to their ASCII
// base letter before tokenization.
//
// Tokens are lowercased and joined with an underscore, then the last word is
// pluralized using English inflection rules:
//
//	naming.Collection("Reservation")    // "reservations", nil
//	naming.Collection("UserCategory")   // "user_categories", nil
//	naming.Collection("APIKey")         // "api_keys", nil
//	naming.Collection("Person")         // "people", nil
//	naming.Collection("!!!")            // "", ErrEmptyName
//
// All functions are pure and safe for concurrent use.
package naming
