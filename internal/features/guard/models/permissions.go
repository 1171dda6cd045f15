package models

// PermissionProfile is a set of capability flags applied to a member of a group.
type PermissionProfile struct {
	SendMessages       bool
	SendAudios         bool
	SendDocuments      bool
	SendPhotos         bool
	SendVideos         bool
	SendVideoNotes     bool
	SendVoiceNotes     bool
	SendPolls          bool
	SendOtherMessages  bool
	AddWebPagePreviews bool
	ChangeInfo         bool
	InviteUsers        bool
	PinMessages        bool
}

// Restricted returns the profile applied to a member until they pass the challenge.
func Restricted() PermissionProfile {
	return PermissionProfile{}
}

// Unrestricted returns the profile of a regular verified member. Group info and
// pinned messages stay reserved for admins.
func Unrestricted() PermissionProfile {
	return PermissionProfile{
		SendMessages:       true,
		SendAudios:         true,
		SendDocuments:      true,
		SendPhotos:         true,
		SendVideos:         true,
		SendVideoNotes:     true,
		SendVoiceNotes:     true,
		SendPolls:          true,
		SendOtherMessages:  true,
		AddWebPagePreviews: true,
		ChangeInfo:         false,
		InviteUsers:        true,
		PinMessages:        false,
	}
}

// CanPost reports whether the profile allows any kind of content to be posted.
func (p PermissionProfile) CanPost() bool {
	return p.SendMessages || p.SendAudios || p.SendDocuments || p.SendPhotos ||
		p.SendVideos || p.SendVideoNotes || p.SendVoiceNotes || p.SendPolls ||
		p.SendOtherMessages
}
