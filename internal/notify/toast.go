package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const toastTimeout = 10 * time.Second

// toastScript shows a Windows 10+ toast and degrades to a tray balloon when
// the WinRT toast API is unavailable. Title and body are spliced in as
// PowerShell single-quoted strings.
const toastScript = `
$ErrorActionPreference = 'SilentlyContinue'

try {
    [Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
    [Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null

    $template = @"
<toast>
    <visual>
        <binding template="ToastText02">
            <text id="1">%s</text>
            <text id="2">%s</text>
        </binding>
    </visual>
</toast>
"@

    $xml = New-Object Windows.Data.Xml.Dom.XmlDocument
    $xml.LoadXml($template)
    $toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
    [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("Reminders").Show($toast)
    exit 0
} catch {}

try {
    Add-Type -AssemblyName System.Windows.Forms
    $notifyIcon = New-Object System.Windows.Forms.NotifyIcon
    $notifyIcon.Icon = [System.Drawing.SystemIcons]::Information
    $notifyIcon.BalloonTipTitle = '%s'
    $notifyIcon.BalloonTipText = '%s'
    $notifyIcon.Visible = $true
    $notifyIcon.ShowBalloonTip(5000)
    Start-Sleep -Seconds 5
    $notifyIcon.Dispose()
    exit 0
} catch {
    exit 1
}
`

// Toast shows Windows toast notifications via PowerShell.
type Toast struct{}

// NewToast creates the Windows toast strategy.
func NewToast() *Toast {
	return &Toast{}
}

func (t *Toast) Name() string { return "toast" }

// Deliver runs the embedded PowerShell toast script.
func (t *Toast) Deliver(ctx context.Context, title, body string) error {
	escTitle := escapePowerShell(title)
	escBody := escapePowerShell(body)
	script := fmt.Sprintf(toastScript, escTitle, escBody, escTitle, escBody)
	return runCommand(ctx, t.Name(), toastTimeout,
		"powershell", "-ExecutionPolicy", "Bypass", "-Command", script)
}

// escapePowerShell escapes single quotes for PowerShell string literals.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
