package menu

// Version is the FlavorScape release, printed by the version command.
const Version = "0.1.0"
