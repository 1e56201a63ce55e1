package scripts

const startScriptTemplate = `param(
    [string]$ConfigPath = "{{.ConfigRelPath}}"
)

Set-Location -Path "{{.InstallPath}}"

try {
    Write-Host "Starting BeamMP server, press Ctrl+C to stop it" -ForegroundColor Green
    & ".\{{.ExecutableName}}" --config "$ConfigPath"
    if ($LASTEXITCODE -ne 0) {
        throw "server exited with code $LASTEXITCODE"
    }
} catch {
    Write-Host "Failed to start server: $_" -ForegroundColor Red
    Read-Host "Press Enter to close"
}
`

const updateScriptTemplate = `$ErrorActionPreference = "Stop"

Set-Location -Path "{{.InstallPath}}"

Stop-Process -Name "{{.ProcessBaseName}}" -Force -ErrorAction SilentlyContinue

$backupMade = $false
if (Test-Path "{{.ExecutableName}}") {
    Copy-Item "{{.ExecutableName}}" "{{.ExecutableName}}.bak" -Force
    $backupMade = $true
    Write-Host "Backed up current executable to {{.ExecutableName}}.bak"
}

try {
    Invoke-WebRequest -Uri "{{.DownloadURL}}" -OutFile "{{.ExecutableName}}" -UseBasicParsing
    Write-Host "Update complete. Run {{.StartScriptName}} to start the server again." -ForegroundColor Green
} catch {
    Write-Host "Download failed: $_" -ForegroundColor Red
    if ($backupMade) {
        Copy-Item "{{.ExecutableName}}.bak" "{{.ExecutableName}}" -Force
        Write-Host "Previous executable restored" -ForegroundColor Yellow
    }
}
`
