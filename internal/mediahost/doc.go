// Package mediahost adapts the external media hosting service used for
// image and audio uploads.
//
// Images upload through the host's image endpoint; audio travels through the
// general video/binary endpoint, tagged into a fixed folder, because the host
// exposes no dedicated audio endpoint. Uploads carry the configured upload
// preset and cloud name. Listing is forward-only cursor pagination: the
// caller passes an optional page size and opaque continuation cursor, and the
// response reports the next cursor together with a has-more flag.
//
// Upload and delete successes raise their own one-shot notifications;
// failures notify once and return the error, leaving local UI state (such as
// a selected file) for the caller to reset.
package mediahost
