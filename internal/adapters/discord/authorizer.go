package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// Authorizer decides whether a guild member acts as game master.
type Authorizer interface {
	IsGameMaster(member *discordgo.Member) bool
}

// RoleAuthorizer grants game-master rights to members holding the configured
// role, and to members who can manage the guild.
type RoleAuthorizer struct {
	gmRoleID string
}

func NewRoleAuthorizer(gmRoleID string) RoleAuthorizer {
	return RoleAuthorizer{gmRoleID: gmRoleID}
}

func (a RoleAuthorizer) IsGameMaster(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageGuild) != 0 {
		return true
	}
	return a.gmRoleID != "" && slices.Contains(member.Roles, a.gmRoleID)
}
