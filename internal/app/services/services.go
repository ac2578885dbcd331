package services

// Services defined in this package:
// - AuthService: handles signup, login credential checks
// - AnnouncementService: posting and listing announcements
// - RecordingService: validating, storing and listing recording uploads
// - MentorService: mentor requests and listing
